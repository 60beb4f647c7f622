package client_test

import (
	"context"
	"fmt"
	"log"

	"github.com/pratik-mahalle/recommendations/pkg/client"
)

// Example demonstrates basic usage of the Recommendation client
func Example() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8080",
	})

	ctx := context.Background()

	rec, err := c.Recommendations().Create(ctx, client.CreateRecommendationRequest{
		PID:            100,
		RecommendedPID: 200,
		Type:           client.TypeCrossSell,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Created recommendation %d\n", rec.ID)
}

// ExampleRecommendationService_List demonstrates listing liked cross-sell
// recommendations for a product
func ExampleRecommendationService_List() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8080",
	})

	recType := client.TypeCrossSell
	liked := true
	pid := int64(100)
	amount := 5

	recommendations, err := c.Recommendations().List(context.Background(), &client.RecommendationListOptions{
		Type:   &recType,
		Liked:  &liked,
		PID:    &pid,
		Amount: &amount,
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, rec := range recommendations {
		fmt.Printf("%d -> %d (%s)\n", rec.PID, rec.RecommendedPID, rec.Type)
	}
}

// ExampleRecommendationService_Like demonstrates liking a recommendation
func ExampleRecommendationService_Like() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8080",
	})

	rec, err := c.Recommendations().Like(context.Background(), 1)
	if err != nil {
		if client.IsNotFound(err) {
			fmt.Println("recommendation does not exist")
			return
		}
		log.Fatal(err)
	}

	fmt.Printf("Recommendation %d liked: %v\n", rec.ID, rec.Liked)
}

// ExampleClient_Health demonstrates checking API health
func ExampleClient_Health() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8080",
	})

	health, err := c.Health(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("API Status: %s\n", health.Status)
}
