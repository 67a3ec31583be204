package remind

import "github.com/m04kA/SMC-ReservationService/pkg/types"

// Params данные бронирования для текста напоминания
type Params struct {
	ShopName        string
	ReservationDate string // YYYY-MM-DD
	StartTime       types.TimeString
	EndTime         types.TimeString
	CourseName      string
	PeopleNumber    int
	// DateDifference смещение дня отправки относительно дня визита
	// 0 - в день визита, -1 - за день до него
	DateDifference int
}

// Message тело напоминания, публикуемое в очередь
type Message struct {
	Type            string `json:"type"`
	AltText         string `json:"altText"`
	Title           string `json:"title"`
	Header          string `json:"header"`
	ShopName        string `json:"shopName"`
	ReservationDate string `json:"reservationDate"`
	CourseName      string `json:"courseName"`
	NumberOfPeople  string `json:"numberOfPeople"`
	Footer          string `json:"footer"`
}
