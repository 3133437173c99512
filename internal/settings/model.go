package settings

// Settings holds the single row of app-wide preferences
type Settings struct {
	CurrencySymbol string `json:"currency_symbol"`
}
