package models

type Team struct {
	ID       int      `json:"id"`
	Teamname string   `json:"teamname"`
	Members  []string `json:"members"`
}

func (t Team) clone() Team {
	t.Members = append([]string(nil), t.Members...)
	return t
}
