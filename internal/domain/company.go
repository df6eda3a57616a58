package domain

import "time"

type Company struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	OwnerID   int32     `json:"owner_id"`
	Website   string    `json:"website"`
	Location  string    `json:"location"`
	CreatedOn time.Time `json:"created_on"`
}
