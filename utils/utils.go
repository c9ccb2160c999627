package utils

// Order is the direction of a sorted view.
type Order uint8

const (
	DescOrder Order = iota
	AscOrder
)
