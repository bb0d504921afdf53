package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/fulldump/apitest"
)

// Save writes one request/response example as markdown, used to generate
// the API docs from the acceptance suite. It is a no-op unless
// API_EXAMPLES_PATH is set.
func Save(response *apitest.Response, title, description string) {

	examplesPath := os.Getenv("API_EXAMPLES_PATH")
	if examplesPath == "" {
		return
	}

	request := response.Request

	s := "# " + title + "\n\n"
	if description != "" {
		s += description + "\n\n"
	}

	s += "```http\n"

	query := request.URL.RawQuery
	if query != "" {
		query = "?" + query
	}
	s += request.Method + " " + request.URL.Path + query + " " + request.Proto + "\n\n"

	requestBody := formatJSON(response.BodyRequestString())
	if requestBody != "" {
		s += requestBody + "\n\n"
	}

	s += response.Proto + " " + response.Status + "\n\n"
	s += formatJSON(response.BodyString()) + "\n"
	s += "```\n"

	filename := strings.Replace(strings.ToLower(title), " ", "_", -1) + ".md"
	p := path.Join(examplesPath, path.Clean(filename))
	err := os.WriteFile(p, []byte(s), 0666)
	if err != nil {
		fmt.Println("Saving err:", err)
	}
}

func formatJSON(body string) string {

	var i interface{}

	err := json.Unmarshal([]byte(body), &i)
	if err != nil {
		return body
	}

	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		return body
	}

	return string(bytes)
}
