package repository

import "time"

type Paste struct {
	ID      int64     `json:"id"`
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Time    time.Time `json:"time"`
}

type Comment struct {
	ID      int64   `json:"id"`
	PasteID int64   `json:"paste_id"`
	Comment *string `json:"comment"`
}
