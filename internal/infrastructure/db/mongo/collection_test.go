package mongo

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/influencer-summit/summit-api/internal/core/domain"
)

func TestDocumentLayout_FieldsInlinedWithID(t *testing.T) {
	reg := domain.Registration{
		RegID:        "SR_001",
		InfluencerID: "INF_001",
		Email:        "a@b.com",
		RegisteredAt: "2025-06-01T12:00:00.000Z",
	}

	raw, err := bson.Marshal(document[domain.Registration]{ID: reg.RegID, Record: reg})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var flat bson.M
	if err := bson.Unmarshal(raw, &flat); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if flat["_id"] != "SR_001" || flat["regId"] != "SR_001" || flat["influencerId"] != "INF_001" {
		t.Fatalf("unexpected stored layout: %v", flat)
	}
	if _, ok := flat["name"]; ok {
		t.Error("empty name must be omitted")
	}

	var back document[domain.Registration]
	if err := bson.Unmarshal(raw, &back); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if back.Record != reg {
		t.Fatalf("round trip mismatch: %+v", back.Record)
	}
}

func TestConnect_RequiresDatabase(t *testing.T) {
	if _, _, err := Connect(context.Background(), Config{URI: "mongodb://localhost:27017"}); err == nil {
		t.Fatalf("expected error without a database name")
	}
}

func TestClientOptions_AppName(t *testing.T) {
	opts := clientOptions(Config{URI: "mongodb://localhost:27017"}, time.Second)
	if opts.AppName == nil || *opts.AppName != defaultAppName {
		t.Fatalf("expected app name %q", defaultAppName)
	}
	if opts.WriteConcern == nil {
		t.Fatalf("expected a write concern")
	}
}
