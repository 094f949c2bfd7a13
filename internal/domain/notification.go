package domain

type Notification struct {
	ID   int
	From string
	Text string
	Time string
}
