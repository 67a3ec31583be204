package remind

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

const (
	messageType = "restaurant_remind"
	title       = "Напоминание о бронировании"

	footerOnDay    = "Сегодня ждем вас! Будьте осторожны в пути."
	footerDaysLeft = "Будем рады видеть вас в день визита."
)

// BuildMessage формирует текст напоминания
// Заголовок зависит от того, отправляется ли напоминание в день визита или заранее
func BuildMessage(p Params) Message {
	var header, footer string
	if p.DateDifference < 0 {
		header = fmt.Sprintf("До вашего визита осталось дней: %d", -p.DateDifference)
		footer = footerDaysLeft
	} else {
		header = "Сегодня день вашего визита"
		footer = footerOnDay
	}

	return Message{
		Type:            messageType,
		AltText:         header,
		Title:           title,
		Header:          header,
		ShopName:        p.ShopName,
		ReservationDate: fmt.Sprintf("%s %s-%s", p.ReservationDate, p.StartTime, p.EndTime),
		CourseName:      p.CourseName,
		NumberOfPeople:  strconv.Itoa(p.PeopleNumber),
		Footer:          footer,
	}
}

// BuildReminders создает два напоминания для outbox:
// в день визита и за dateDifference дней до него
func BuildReminders(userID, channelID string, day time.Time, p Params, dateDifference int) ([]*domain.RemindMessage, error) {
	offsets := []int{domain.OnDayRemindDateDifference, dateDifference}

	messages := make([]*domain.RemindMessage, 0, len(offsets))
	for _, diff := range offsets {
		params := p
		params.DateDifference = diff

		payload, err := json.Marshal(BuildMessage(params))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncodeMessage, err)
		}

		messages = append(messages, &domain.RemindMessage{
			ID:        uuid.New(),
			UserID:    userID,
			ChannelID: channelID,
			SendDate:  day.AddDate(0, 0, diff),
			Payload:   payload,
		})
	}

	return messages, nil
}
