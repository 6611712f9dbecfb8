package models

import "github.com/golang-jwt/jwt/v5"

// Claims defines the structure of the JWT claims for the admin API.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
