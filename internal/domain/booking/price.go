package booking

import (
	"strconv"
	"strings"

	"github.com/BruksfildServices01/home-services/internal/httperr"
	"github.com/BruksfildServices01/home-services/internal/models"
)

// PriceCodec formats prices as currency-prefixed strings ("₹500") and parses
// them back.
type PriceCodec struct {
	Symbol string
}

func NewPriceCodec(symbol string) PriceCodec {
	return PriceCodec{Symbol: symbol}
}

func (p PriceCodec) Format(amount int) string {
	return p.Symbol + strconv.Itoa(amount)
}

func (p PriceCodec) FormatTotal(total float64) string {
	return p.Symbol + strconv.FormatFloat(total, 'f', -1, 64)
}

func (p PriceCodec) Parse(price string) (float64, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(price), p.Symbol))
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_price")
	}
	return v, nil
}

// Total sums every booking that is not cancelled.
func (p PriceCodec) Total(bookings []models.Booking) (float64, error) {
	var sum float64
	for _, b := range bookings {
		if Status(b.Status) == StatusCancelled {
			continue
		}
		v, err := p.Parse(b.Price)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}
