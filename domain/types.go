package domain

// Currency a catalog entry: a currency code and how many units of it buy one unit of the reference currency
type Currency struct {
	Name string
	Rate Rate
}

// Amount a monetary amount... which is still a float
type Amount float64

// Rate an exchange rate
type Rate float64

// Request a conversion request. Source and Target are 1-based catalog indexes.
type Request struct {
	Source int
	Target int
	Amount Amount
}

type Exchanged struct {
	Rate   Rate
	Amount Amount
}
