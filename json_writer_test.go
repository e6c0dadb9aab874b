package beanfolio

import (
	"encoding/json"
	"testing"

	"github.com/etnz/beanfolio/date"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("keeps field order", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("z", 1).Append("a", "x").Optional("skipped", "").Optional("kept", true)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := `{"z":1,"a":"x","kept":true}`; string(got) != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("error is sticky", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("bad", make(chan int)).Append("good", 1)
		if _, err := w.MarshalJSON(); err == nil {
			t.Error("expected an error for an unmarshalable value")
		}
	})
}

func TestTransactionJSON(t *testing.T) {
	on := date.New(2020, 2, 10)
	fee := amt(1, "USD")
	tests := []struct {
		name string
		tx   Transaction
		want string
	}{
		{
			name: "stock trade",
			tx:   StockTrade{Symbol: "VTI", Date: on, Quantity: Q(10), Price: amt(150, "USD"), Commission: &fee},
			want: `{"kind":"stock","date":"2020-02-10","symbol":"VTI","quantity":"10","price":{"number":"150","currency":"USD"},"commission":{"number":"1","currency":"USD"}}`,
		},
		{
			name: "dividend",
			tx:   DividendPayment{Symbol: "VTI", Date: on, Cash: amt(25, "USD")},
			want: `{"kind":"dividend","date":"2020-02-10","symbol":"VTI","cash":{"number":"25","currency":"USD"}}`,
		},
		{
			name: "commission",
			tx:   CommissionCharge{Date: on, Amount: fee},
			want: `{"kind":"commission","date":"2020-02-10","amount":{"number":"1","currency":"USD"}}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := json.Marshal(tc.tx)
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("json.Marshal() =\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestMoneyJSON(t *testing.T) {
	got, err := json.Marshal(USD(12.5))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if want := `{"currency":"USD","amount":"12.5"}`; string(got) != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}
}
