package model

// School школа. Процесс обслуживает одну школу, все классы и
// учителя привязаны к ней.
type School struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
