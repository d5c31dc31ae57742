package payment

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	paymenterrors "github.com/rifatalam240/Employee-Management-System-Server/internal/payment/errors"
)

// MonthValue decodes a JSON month given either as a number (3) or an
// English month name ("March"), which is what clients historically send.
type MonthValue int

func (m *MonthValue) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*m = MonthValue(n)
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return paymenterrors.ErrInvalidMonth
	}

	parsed, err := parseMonthName(name)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func parseMonthName(name string) (MonthValue, error) {
	name = strings.TrimSpace(name)
	if n, err := strconv.Atoi(name); err == nil {
		return MonthValue(n), nil
	}

	for i := time.January; i <= time.December; i++ {
		if strings.EqualFold(name, i.String()) || strings.EqualFold(name, i.String()[:3]) {
			return MonthValue(i), nil
		}
	}
	return 0, paymenterrors.ErrInvalidMonth
}

func (m MonthValue) Valid() bool {
	return m >= 1 && m <= 12
}
