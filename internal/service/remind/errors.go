package remind

import "errors"

// ErrEncodeMessage возвращается, если напоминание не удалось сериализовать
var ErrEncodeMessage = errors.New("remind: failed to encode message")
