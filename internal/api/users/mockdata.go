package users

import (
	"time"

	"github.com/gin-gonic/gin"
)

func date(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// mockPortfolio returns the fixed dashboard aggregate shown for every known
// wallet. The numbers are demo data, deliberately unrelated to the
// tokenization store.
func mockPortfolio(wallet string) gin.H {
	return gin.H{
		"walletAddress":            wallet,
		"totalValue":               125000,
		"totalInvested":            85000,
		"totalGains":               40000,
		"stakingRewards":           3200,
		"restorationContributions": 1500,
		"holdings": []gin.H{
			{
				"artifactId":          "art_001",
				"artifactTitle":       "Jaina-Style Maya Figurine",
				"shares":              100,
				"totalShares":         1000,
				"ownershipPercentage": 10,
				"currentValue":        4500,
				"purchasePrice":       4000,
				"gain":                500,
				"gainPercentage":      12.5,
			},
			{
				"artifactId":          "art_003",
				"artifactTitle":       "Olmec Jade Mask",
				"shares":              50,
				"totalShares":         1000,
				"ownershipPercentage": 5,
				"currentValue":        6250,
				"purchasePrice":       6000,
				"gain":                250,
				"gainPercentage":      4.2,
			},
		},
		"stakingPositions": []gin.H{
			{
				"tokenId":         "FRAC_art_001",
				"stakedAmount":    10000,
				"apy":             8.5,
				"maturityDate":    date("2024-06-15T00:00:00Z"),
				"expectedRewards": 425,
			},
		},
		"transactionHistory": []gin.H{
			{
				"id":         "tx_001",
				"type":       "purchase",
				"artifactId": "art_001",
				"amount":     4000,
				"shares":     100,
				"timestamp":  date("2024-01-15T00:00:00Z"),
				"status":     "completed",
			},
			{
				"id":        "tx_002",
				"type":      "stake",
				"tokenId":   "FRAC_art_001",
				"amount":    10000,
				"duration":  180,
				"timestamp": date("2024-01-20T00:00:00Z"),
				"status":    "active",
			},
		},
	}
}

// mockRestorationFund returns the static fund aggregate. There is no
// per-user linkage.
func mockRestorationFund() gin.H {
	return gin.H{
		"totalContributions":     25000,
		"totalArtifactsRestored": 12,
		"currentProjects": []gin.H{
			{
				"id":            "restore_001",
				"artifactId":    "art_001",
				"title":         "Jaina Figurine Conservation",
				"description":   "Professional conservation of ceramic surface and structural stabilization",
				"targetAmount":  5000,
				"currentAmount": 3200,
				"contributors":  45,
				"status":        "active",
				"deadline":      date("2024-03-15T00:00:00Z"),
			},
			{
				"id":            "restore_002",
				"artifactId":    "art_002",
				"title":         "Obsidian Mirror Restoration",
				"description":   "Expert restoration of obsidian surface and frame reconstruction",
				"targetAmount":  3000,
				"currentAmount": 1800,
				"contributors":  28,
				"status":        "active",
				"deadline":      date("2024-04-01T00:00:00Z"),
			},
		},
		"completedProjects": []gin.H{
			{
				"id":           "restore_003",
				"title":        "Maya Vase Conservation",
				"description":  "Complete restoration of painted ceramic vessel",
				"amount":       2500,
				"completedAt":  date("2024-01-10T00:00:00Z"),
				"contributors": 32,
			},
		},
	}
}
