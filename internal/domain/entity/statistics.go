package entity

import "time"

// RoleCount is one row of the role distribution.
type RoleCount struct {
	Role  Role  `json:"role"`
	Count int64 `json:"count"`
}

// AccountCounts are the raw aggregates over the users table.
type AccountCounts struct {
	Total      int64
	Active     int64
	Verified   int64
	Unverified int64
}

// AccountStatistics summarizes the user base for the admin dashboard.
type AccountStatistics struct {
	TotalUsers       int64              `json:"totalUsers"`
	ActiveUsers      int64              `json:"activeUsers"`
	VerifiedUsers    int64              `json:"verifiedUsers"`
	UnverifiedUsers  int64              `json:"unverifiedUsers"`
	VerificationRate float64            `json:"verificationRate"`
	ActiveRate       float64            `json:"activeRate"`
	RoleDistribution []RoleCount        `json:"roleDistribution"`
	Business         BusinessStatistics `json:"business"`
	GeneratedAt      time.Time          `json:"generatedAt"`
}

// BusinessStatistics breaks down the accounts that list items.
type BusinessStatistics struct {
	TotalBusinessUsers int64   `json:"totalBusinessUsers"`
	Owners             int64   `json:"owners"`
	Businesses         int64   `json:"businesses"`
	OwnerPercentage    float64 `json:"ownerPercentage"`
}

// Percentage returns part/total*100, or 0 when total is 0.
func Percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}

	return float64(part) * 100 / float64(total)
}
