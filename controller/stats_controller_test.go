package controller

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestTotalRevenue(t *testing.T) {
	tests := []struct {
		name   string
		groups []bson.M
		want   float64
	}{
		{"no payments", nil, 0},
		{"empty result set", []bson.M{}, 0},
		{"float sum", []bson.M{{"totalRevenue": 129.95}}, 129.95},
		{"int64 sum", []bson.M{{"totalRevenue": int64(42)}}, 42},
		{"int32 sum", []bson.M{{"totalRevenue": int32(7)}}, 7},
		{"missing field", []bson.M{{"other": 1}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := totalRevenue(tt.groups); got != tt.want {
				t.Errorf("totalRevenue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrderStatsPipelineShape(t *testing.T) {
	pipeline := orderStatsPipeline()

	wantStages := []string{"$unwind", "$lookup", "$unwind", "$group", "$project"}
	if len(pipeline) != len(wantStages) {
		t.Fatalf("pipeline has %d stages, want %d", len(pipeline), len(wantStages))
	}
	for i, stage := range pipeline {
		if stage[0].Key != wantStages[i] {
			t.Errorf("stage %d = %s, want %s", i, stage[0].Key, wantStages[i])
		}
	}

	lookup, ok := pipeline[1][0].Value.(bson.D)
	if !ok {
		t.Fatal("lookup stage is not a bson.D")
	}
	fields := map[string]interface{}{}
	for _, e := range lookup {
		fields[e.Key] = e.Value
	}
	if fields["from"] != "menu" || fields["foreignField"] != "_id" || fields["localField"] != "menuItemIds" {
		t.Errorf("unexpected lookup spec: %v", fields)
	}

	group, ok := pipeline[3][0].Value.(bson.D)
	if !ok {
		t.Fatal("group stage is not a bson.D")
	}
	keys := map[string]bool{}
	for _, e := range group {
		keys[e.Key] = true
	}
	for _, k := range []string{"_id", "quantity", "revenue"} {
		if !keys[k] {
			t.Errorf("group stage missing %s", k)
		}
	}

	// revenue must survive the projection
	project, ok := pipeline[4][0].Value.(bson.D)
	if !ok {
		t.Fatal("project stage is not a bson.D")
	}
	hasRevenue := false
	for _, e := range project {
		if e.Key == "revenue" {
			hasRevenue = true
		}
	}
	if !hasRevenue {
		t.Error("projection drops the revenue field")
	}
}
