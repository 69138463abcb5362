package score

import (
	"encoding/json"
	"fmt"
	"os"
)

func ParseLog(data []byte) ([]Entry, error) {
	var log []Entry
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("parse battle log: %w", err)
	}
	return log, nil
}

func ParseTeams(data []byte) (map[string]TeamInfo, error) {
	var teams map[string]TeamInfo
	if err := json.Unmarshal(data, &teams); err != nil {
		return nil, fmt.Errorf("parse team info: %w", err)
	}
	return teams, nil
}

func LoadLog(path string) ([]Entry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseLog(b)
}

func LoadTeams(path string) (map[string]TeamInfo, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTeams(b)
}
