package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seeds a demo campaign with a four-question form and a batch of
// submissions whose answer records use every choice_ids encoding the
// engine accepts, so a fresh environment exercises the full pipeline.
func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database("campaignlens")

	hostID := "host_demo0001"
	campaignOID := primitive.NewObjectID()
	campaignID := campaignOID.Hex()
	formID := "form_demo0001"

	campaign := bson.M{
		"_id":       campaignOID,
		"hostId":    hostID,
		"name":      "Cloud Expo 2026 Booth Survey",
		"formId":    formID,
		"status":    "active",
		"createdAt": time.Now(),
		"updatedAt": time.Now(),
	}
	if _, err := db.Collection("campaigns").InsertOne(ctx, campaign); err != nil {
		log.Fatalf("Failed to insert campaign: %v", err)
	}

	questions := []any{
		bson.M{
			"id":       "q_timing",
			"form_id":  formID,
			"order_no": 1,
			"body":     "When do you plan to start your project?",
			"type":     "single",
			"options": []any{
				bson.M{"id": "o_now", "text": "Within 1 month"},
				bson.M{"id": "o_q", "text": "Within 3 months"},
				bson.M{"id": "o_half", "text": "Within 6 months"},
				bson.M{"id": "o_none", "text": "No plan yet"},
			},
		},
		bson.M{
			"id":       "q_type",
			"form_id":  formID,
			"order_no": "2", // numeric string, normalized downstream
			"body":     "What type of project are you considering?",
			"type":     "single",
			"options": []any{
				bson.M{"id": "o_cloud", "text": "Cloud migration"},
				bson.M{"id": "o_sec", "text": "Security"},
				bson.M{"id": "o_data", "text": "Data platform"},
				bson.M{"id": "o_web", "text": "Web development"},
				bson.M{"id": "o_na", "text": "Not applicable"},
			},
		},
		bson.M{
			"id":       "q_follow",
			"form_id":  formID,
			"order_no": 3,
			"body":     "How should we follow up with you?",
			"type":     "multiple",
			"options": []any{
				bson.M{"id": "o_visit", "text": "Site visit"},
				bson.M{"id": "o_meet", "text": "Online meeting"},
				bson.M{"id": "o_mail", "text": "Email"},
				bson.M{"id": "o_no", "text": "Not interested"},
			},
		},
		bson.M{
			"id":       "q_note",
			"form_id":  formID,
			"order_no": 4,
			"body":     "Anything else we should know?",
			"type":     "text",
		},
	}
	if _, err := db.Collection("questions").InsertMany(ctx, questions); err != nil {
		log.Fatalf("Failed to insert questions: %v", err)
	}

	type seedAnswer struct {
		timing  string
		project string
		follow  any // heterogeneous encodings on purpose
		note    string
	}
	respondents := []seedAnswer{
		{"o_now", "o_cloud", []string{"o_visit"}, "We need to migrate before the fiscal year ends."},
		{"o_now", "o_sec", `["o_visit","o_mail"]`, "Security audit is overdue."},
		{"o_now", "o_cloud", "o_meet", ""},
		{"o_q", "o_cloud", []string{"o_meet"}, "Comparing vendors right now."},
		{"o_q", "o_data", `["o_meet"]`, "Interested in a data platform pilot."},
		{"o_q", "o_web", "o_mail", ""},
		{"o_half", "o_web", []string{"o_mail"}, "Just exploring for now."},
		{"o_half", "o_data", "o_mail", ""},
		{"o_half", "o_na", `["o_no"]`, ""},
		{"o_none", "o_na", "o_no", "Visited the booth for the giveaway."},
		{"o_none", "o_na", []string{"o_no"}, ""},
		{"o_none", "o_web", "o_mail", "Maybe next year."},
	}

	var submissions []any
	var answers []any
	base := time.Now().Add(-2 * time.Hour)
	for i, r := range respondents {
		subID := fmt.Sprintf("sub_%03d", i+1)
		submissions = append(submissions, bson.M{
			"id":          subID,
			"campaignId":  campaignID,
			"submittedAt": base.Add(time.Duration(i) * 7 * time.Minute),
		})
		answers = append(answers,
			bson.M{"campaign_id": campaignID, "submission_id": subID, "question_id": "q_timing", "choice_ids": []string{r.timing}},
			bson.M{"campaign_id": campaignID, "submission_id": subID, "question_id": "q_type", "choice_ids": r.project},
			bson.M{"campaign_id": campaignID, "submission_id": subID, "question_id": "q_follow", "choice_ids": r.follow},
		)
		if r.note != "" {
			answers = append(answers,
				bson.M{"campaign_id": campaignID, "submission_id": subID, "question_id": "q_note", "text_answer": r.note})
		}
	}

	if _, err := db.Collection("submissions").InsertMany(ctx, submissions); err != nil {
		log.Fatalf("Failed to insert submissions: %v", err)
	}
	if _, err := db.Collection("answers").InsertMany(ctx, answers); err != nil {
		log.Fatalf("Failed to insert answers: %v", err)
	}

	fmt.Printf("Seeded campaign %s (host %s) with %d submissions and %d answers\n",
		campaignID, hostID, len(submissions), len(answers))
}
