package model

// RiskProfile is the free-form risk record exported next to the price data.
type RiskProfile struct {
	CapitalVND      *float64 `yaml:"capital_vnd,omitempty" json:"Capital_VND,omitempty"`
	MaxDrawdownPct  *float64 `yaml:"max_drawdown_pct,omitempty" json:"Max_Drawdown_Pct,omitempty"`
	TargetProfitPct *float64 `yaml:"target_profit_pct,omitempty" json:"Target_Profit_Pct,omitempty"`
	HoldingHorizon  string   `yaml:"holding_horizon,omitempty" json:"Holding_Horizon,omitempty"` // days | weeks | months
	Notes           string   `yaml:"notes,omitempty" json:"Notes,omitempty"`
}

// MarketContextRow is one user-entered note about news or planned levels.
type MarketContextRow struct {
	NewsOrEventDate string `yaml:"news_or_event_date,omitempty" json:"News_or_Event_Date,omitempty"`
	Ticker          string `yaml:"ticker,omitempty" json:"Ticker,omitempty"`
	HeadlineOrNote  string `yaml:"headline_or_note,omitempty" json:"Headline_or_Note,omitempty"`
	SourceOrLink    string `yaml:"source_or_link,omitempty" json:"Source_or_Link,omitempty"`
	SupportZone     string `yaml:"support_zone,omitempty" json:"Support_Zone,omitempty"`
	ResistanceZone  string `yaml:"resistance_zone,omitempty" json:"Resistance_Zone,omitempty"`
	PlannedBuyZone  string `yaml:"planned_buy_zone,omitempty" json:"Planned_Buy_Zone,omitempty"`
	ActualBuyPrice  string `yaml:"actual_buy_price,omitempty" json:"Actual_Buy_Price,omitempty"`
	Comment         string `yaml:"comment,omitempty" json:"Comment,omitempty"`
}

// Annotations groups the risk profile and market context carried to the exporter.
type Annotations struct {
	Risk    RiskProfile        `yaml:"risk_profile" json:"risk_profile"`
	Context []MarketContextRow `yaml:"market_context" json:"market_context"`
}
