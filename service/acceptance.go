package service

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

// Acceptance runs the whole API surface against a server preloaded with the
// fixture dataset 'covid':
//
//	state,fips,positive
//	CA,06,5
//	CO,08,2
//	CA,06,7
func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("List datasets", func(a *biff.A) {
		resp := apiRequest("GET", "/datasets").Do()
		Save(resp, "List datasets", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)

		list := resp.BodyJson().([]interface{})
		biff.AssertEqual(len(list), 1)

		dataset := list[0].(JSON)
		biff.AssertEqual(dataset["name"], "covid")
		biff.AssertEqualJson(dataset["total"], 3.0)
		biff.AssertEqualJson(dataset["states"], 2.0)
		biff.AssertEqualJson(dataset["schema"], []interface{}{"state", "fips", "positive"})
		biff.AssertNotEqual(dataset["load_id"], "")
	})

	a.Alternative("Get dataset", func(a *biff.A) {
		resp := apiRequest("GET", "/datasets/covid").Do()
		Save(resp, "Get dataset", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson().(JSON)["total"], 3.0)
	})

	a.Alternative("Get unknown dataset", func(a *biff.A) {
		resp := apiRequest("GET", "/datasets/nope").Do()
		Save(resp, "Get unknown dataset", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
	})

	a.Alternative("List states", func(a *biff.A) {
		resp := apiRequest("GET", "/datasets/covid/states").Do()
		Save(resp, "List states", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []JSON{
			{"state": "CA", "total": 2},
			{"state": "CO", "total": 1},
		})
	})

	a.Alternative("Get state records", func(a *biff.A) {
		resp := apiRequest("GET", "/datasets/covid/states/CA").Do()
		Save(resp, "Get state records", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(decodeLines(resp.BodyString()), []JSON{
			{"state": "CA", "fips": "06", "positive": 5},
			{"state": "CA", "fips": "06", "positive": 7},
		})

		a.Alternative("Lower-case code hits the same group", func(a *biff.A) {
			resp := apiRequest("GET", "/datasets/covid/states/ca").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(len(decodeLines(resp.BodyString())), 2)
		})
	})

	a.Alternative("Get unknown state", func(a *biff.A) {
		resp := apiRequest("GET", "/datasets/covid/states/ZZ").Do()
		Save(resp, "Get unknown state", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqual(resp.BodyString(), "")
	})

	a.Alternative("Find with filter", func(a *biff.A) {
		resp := apiRequest("POST", "/datasets/covid:find").
			WithBodyJson(JSON{
				"filter": JSON{"state": "CA"},
			}).Do()
		Save(resp, "Find with filter", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqual(len(decodeLines(resp.BodyString())), 2)
	})

	a.Alternative("Find with skip and limit", func(a *biff.A) {
		resp := apiRequest("POST", "/datasets/covid:find").
			WithBodyJson(JSON{
				"skip":  1,
				"limit": 1,
			}).Do()
		Save(resp, "Find with skip and limit", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(decodeLines(resp.BodyString()), []JSON{
			{"state": "CO", "fips": "08", "positive": 2},
		})
	})

	a.Alternative("Find on unknown dataset", func(a *biff.A) {
		resp := apiRequest("POST", "/datasets/nope:find").
			WithBodyJson(JSON{}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
	})
}

func decodeLines(body string) []JSON {
	result := []JSON{}
	for _, line := range strings.Split(strings.TrimSpace(body), "\n") {
		if line == "" {
			continue
		}
		item := JSON{}
		json.Unmarshal([]byte(line), &item)
		result = append(result, item)
	}
	return result
}
