package models

import "time"

type User struct {
	ID          int    `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Avatar      string `json:"avatar"`
	StoreID     *int   `json:"store_id"`
}

func (u User) FullName() string {
	switch {
	case u.LastName == "":
		return u.FirstName
	case u.FirstName == "":
		return u.LastName
	}
	return u.LastName + " " + u.FirstName
}

// HasStore reports whether the account already owns a store.
func (u User) HasStore() bool {
	return u.StoreID != nil
}

type Store struct {
	ID          int       `json:"id"`
	StoreName   string    `json:"store_name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phone_number"`
	Avatar      string    `json:"avatar"`
	Rating      float64   `json:"rating"`
	CreatedDate time.Time `json:"created_date"`
}

type DeliveryInfo struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}
