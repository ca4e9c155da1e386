package tui

type View int

const (
	ViewPost View = iota
	ViewSearch
)
