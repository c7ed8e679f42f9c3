package models

// WarningCode categorizes warnings by subsystem.
// W1xxx = data loading, W2xxx = valuation.
type WarningCode string

const (
	WarnEmptyDataset     WarningCode = "W1001" // a loaded record set contained no rows
	WarnUnknownInvestor  WarningCode = "W2001" // investor has no investments, value resolves to 0
	WarnUnpricedSecurity WarningCode = "W2002" // stock position has no quote at or before the value date
)

// Warning represents a non-fatal issue encountered during processing.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
