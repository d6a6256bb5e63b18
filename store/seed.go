package store

import (
	"time"

	"nectar-house-api/internal/domain/artifacts"
	"nectar-house-api/internal/domain/auctions"
	"nectar-house-api/internal/domain/users"
)

func date(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// seed loads the demo catalogue: three artifacts, three open auctions and
// two collector profiles.
func seed() {
	Artifacts.Put(artifacts.Artifact{
		ID:             "art_001",
		Title:          "Jaina-Style Maya Figurine - Warrior",
		Description:    "Exquisite Jaina-style ceramic figurine depicting a Maya warrior, circa 600-900 CE. From the Nobel Laureate Roger Guillemin collection.",
		Provenance:     "Roger Guillemin Collection → Private Estate → Nectar House",
		Culture:        "Maya",
		Period:         "Classic Period (600-900 CE)",
		Material:       "Ceramic",
		Dimensions:     "12.5 x 8.2 x 4.1 cm",
		Condition:      "Excellent",
		EstimatedValue: 45000,
		CurrentValue:   45000,
		Images:         []string{"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800"},
		IPFSHash:       "QmMockHash001",
		CreatedAt:      date("2024-01-15T00:00:00Z"),
		UpdatedAt:      date("2024-01-15T00:00:00Z"),
	})
	Artifacts.Put(artifacts.Artifact{
		ID:             "art_002",
		Title:          "Aztec Obsidian Mirror",
		Description:    "Rare Aztec obsidian mirror with intricate carved frame, used in ceremonial contexts. Exceptional craftsmanship and historical significance.",
		Provenance:     "Private Collection → Nectar House",
		Culture:        "Aztec",
		Period:         "Post-Classic Period (1200-1521 CE)",
		Material:       "Obsidian, Wood",
		Dimensions:     "15.2 x 15.2 x 2.1 cm",
		Condition:      "Very Good",
		EstimatedValue: 32000,
		CurrentValue:   32000,
		Images:         []string{"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800"},
		IPFSHash:       "QmMockHash002",
		CreatedAt:      date("2024-01-16T00:00:00Z"),
		UpdatedAt:      date("2024-01-16T00:00:00Z"),
	})
	Artifacts.Put(artifacts.Artifact{
		ID:                  "art_003",
		Title:               "Olmec Jade Mask",
		Description:         "Stunning Olmec jade mask with characteristic features. One of the finest examples of Olmec lapidary work in private hands.",
		Provenance:          "Museum Deaccession → Private Collection → Nectar House",
		Culture:             "Olmec",
		Period:              "Formative Period (1200-400 BCE)",
		Material:            "Jade",
		Dimensions:          "18.7 x 14.3 x 3.2 cm",
		Condition:           "Excellent",
		EstimatedValue:      125000,
		CurrentValue:        125000,
		Tokenized:           true,
		FractionalOwnership: true,
		TokenID:             "NFT_003_2024",
		TotalShares:         1000,
		AvailableShares:     250,
		PricePerShare:       125,
		Images:              []string{"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800"},
		IPFSHash:            "QmMockHash003",
		CreatedAt:           date("2024-01-10T00:00:00Z"),
		UpdatedAt:           date("2024-01-20T00:00:00Z"),
	})

	Auctions.Put(auctions.Auction{
		ID:                  "auction_001",
		ArtifactID:          "art_002",
		Title:               "Aztec Obsidian Mirror - Tezcatlipoca Auction",
		Description:         "Live auction for rare Aztec obsidian mirror dedicated to Tezcatlipoca, the Smoking Mirror god.",
		StartPrice:          60000,
		CurrentPrice:        68000,
		ReservePrice:        70000,
		StartTime:           date("2024-02-01T18:00:00Z"),
		EndTime:             date("2024-02-15T18:00:00Z"),
		Status:              auctions.StatusActive,
		HighestBidder:       "wallet_0x123...",
		BidCount:            15,
		MinimumBidIncrement: 2000,
		CreatedAt:           date("2024-01-20T00:00:00Z"),
		UpdatedAt:           date("2024-01-25T00:00:00Z"),
	})
	Auctions.Put(auctions.Auction{
		ID:                  "auction_002",
		ArtifactID:          "art_006",
		Title:               "Teotihuacan Stone Mask Auction",
		Description:         "Exceptional Teotihuacan stone mask representing a deity or high-ranking individual.",
		StartPrice:          70000,
		CurrentPrice:        82000,
		ReservePrice:        85000,
		StartTime:           date("2024-02-05T20:00:00Z"),
		EndTime:             date("2024-02-20T20:00:00Z"),
		Status:              auctions.StatusActive,
		HighestBidder:       "wallet_0x456...",
		BidCount:            12,
		MinimumBidIncrement: 1500,
		CreatedAt:           date("2024-01-22T00:00:00Z"),
		UpdatedAt:           date("2024-01-28T00:00:00Z"),
	})
	Auctions.Put(auctions.Auction{
		ID:                  "auction_003",
		ArtifactID:          "art_008",
		Title:               "Aztec Gold Pendant - Eagle Warrior Auction",
		Description:         "Exquisite Aztec gold pendant depicting an eagle warrior.",
		StartPrice:          110000,
		CurrentPrice:        135000,
		ReservePrice:        140000,
		StartTime:           date("2024-02-10T19:00:00Z"),
		EndTime:             date("2024-02-25T19:00:00Z"),
		Status:              auctions.StatusActive,
		HighestBidder:       "wallet_0x789...",
		BidCount:            8,
		MinimumBidIncrement: 5000,
		CreatedAt:           date("2024-01-25T00:00:00Z"),
		UpdatedAt:           date("2024-01-30T00:00:00Z"),
	})

	Users.Put(users.User{
		ID:                       "user_001",
		WalletAddress:            "0x1234567890abcdef1234567890abcdef12345678",
		Username:                 "art_collector_2024",
		Email:                    "collector@example.com",
		FirstName:                "Maria",
		LastName:                 "Gonzalez",
		ProfileImage:             "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150",
		Bio:                      "Passionate collector of Mesoamerican artifacts with 15+ years experience.",
		Verified:                 true,
		KYCStatus:                users.KYCVerified,
		TotalSpent:               125000,
		TotalEarned:              8500,
		StakingRewards:           3200,
		RestorationContributions: 1500,
		JoinedAt:                 date("2023-06-15T00:00:00Z"),
		LastActive:               date("2024-01-25T00:00:00Z"),
	})
	Users.Put(users.User{
		ID:                       "user_002",
		WalletAddress:            "0xabcdef1234567890abcdef1234567890abcdef12",
		Username:                 "heritage_enthusiast",
		Email:                    "heritage@example.com",
		FirstName:                "James",
		LastName:                 "Chen",
		ProfileImage:             "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150",
		Bio:                      "Blockchain enthusiast and cultural heritage advocate.",
		Verified:                 true,
		KYCStatus:                users.KYCVerified,
		TotalSpent:               45000,
		TotalEarned:              2100,
		StakingRewards:           850,
		RestorationContributions: 300,
		JoinedAt:                 date("2023-09-20T00:00:00Z"),
		LastActive:               date("2024-01-24T00:00:00Z"),
	})
}
