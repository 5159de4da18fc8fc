package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"roadtrip/internal/models"
)

func regulationBody(country string) gin.H {
	return gin.H{
		"country_name": country,
		"speed_limits": gin.H{
			"car": gin.H{"city": 50, "highway": 140, "school_zone": 30},
		},
		"other_rules": gin.H{
			"mandatory_items": gin.H{
				"first_aid_kit":    true,
				"warning_triangle": true,
				"reflective_vests": true,
				"spare_tire":       false,
			},
			"seatbelt_mandatory": true,
			"alcohol_limit":      0.2,
			"driving_age_limit":  18,
			"accepted_driver_ids": gin.H{
				"vienna": true, "geneva": false, "eu": true, "american": false,
			},
		},
		"fees": gin.H{"highway": true, "toll_price": 10},
	}
}

func TestAddRegulationThenDuplicateConflicts(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "POST", "/add_road_regulation", "", regulationBody("Italy"))
	if w.Code != http.StatusOK {
		t.Fatalf("add regulation failed: %d (%s)", w.Code, w.Body.String())
	}

	w = env.do(t, "POST", "/add_road_regulation", "", regulationBody("Italy"))
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate country, got %d", w.Code)
	}
}

func TestAddRegulationRequiresCountryName(t *testing.T) {
	env := newTestEnv(t)

	body := regulationBody("Italy")
	delete(body, "country_name")
	w := env.do(t, "POST", "/add_road_regulation", "", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without country_name, got %d", w.Code)
	}
}

func TestGetAllRegulations(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, "POST", "/add_road_regulation", "", regulationBody("Italy"))
	env.do(t, "POST", "/add_road_regulation", "", regulationBody("Poland"))

	w := env.do(t, "GET", "/road_regulations", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list regulations failed: %d (%s)", w.Code, w.Body.String())
	}

	var list []models.RoadRegulation
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode regulations failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 regulations, got %d", len(list))
	}
}

func TestGetRegulationByCountry(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, "POST", "/add_road_regulation", "", regulationBody("Italy"))

	w := env.do(t, "GET", "/road_regulations/Italy", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get regulation failed: %d (%s)", w.Code, w.Body.String())
	}

	var regulation models.RoadRegulation
	if err := json.Unmarshal(w.Body.Bytes(), &regulation); err != nil {
		t.Fatalf("decode regulation failed: %v", err)
	}
	if regulation.CountryName != "Italy" {
		t.Fatalf("expected Italy, got %q", regulation.CountryName)
	}
	if regulation.SpeedLimits["car"].Highway != 140 {
		t.Fatalf("expected highway limit 140, got %d", regulation.SpeedLimits["car"].Highway)
	}

	w = env.do(t, "GET", "/road_regulations/Atlantis", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown country, got %d", w.Code)
	}
}
