package main

import (
	"reflect"
	"testing"
)

func TestAnalyzeHeaders(t *testing.T) {
	tests := []struct {
		name          string
		input         []string
		wantHeaders   []string
		wantIsData    bool
		wantFirstData []string
	}{
		{
			name:          "Valid headers",
			input:         []string{"Name", "Age", "Email", "Phone"},
			wantHeaders:   []string{"Name", "Age", "Email", "Phone"},
			wantIsData:    false,
			wantFirstData: []string{"Name", "Age", "Email", "Phone"},
		},
		{
			name:          "Numeric data",
			input:         []string{"123", "456", "789", "101"},
			wantHeaders:   []string{"column_1", "column_2", "column_3", "column_4"},
			wantIsData:    true,
			wantFirstData: []string{"123", "456", "789", "101"},
		},
		{
			name:          "Date data",
			input:         []string{"2024-01-01", "2024-01-02", "2024-01-03"},
			wantHeaders:   []string{"column_1", "column_2", "column_3"},
			wantIsData:    true,
			wantFirstData: []string{"2024-01-01", "2024-01-02", "2024-01-03"},
		},
		{
			name:          "Padded headers keep their text",
			input:         []string{" User Name ", "Age", "Email", "Phone"},
			wantHeaders:   []string{"User Name", "Age", "Email", "Phone"},
			wantIsData:    false,
			wantFirstData: []string{" User Name ", "Age", "Email", "Phone"},
		},
		{
			name:          "Duplicate headers",
			input:         []string{"Name", "Name", "Name", "Age"},
			wantHeaders:   []string{"Name", "Name_1", "Name_2", "Age"},
			wantIsData:    false,
			wantFirstData: []string{"Name", "Name", "Name", "Age"},
		},
		{
			name:          "Empty headers",
			input:         []string{"", "", "", ""},
			wantHeaders:   []string{"column_1", "column_2", "column_3", "column_4"},
			wantIsData:    true,
			wantFirstData: []string{"", "", "", ""},
		},
		{
			name:          "Header row with one empty cell",
			input:         []string{"Name", "", "Email", "Phone"},
			wantHeaders:   []string{"Name", "column_2", "Email", "Phone"},
			wantIsData:    false,
			wantFirstData: []string{"Name", "", "Email", "Phone"},
		},
		{
			name:          "Mixed data with numbers and text",
			input:         []string{"John", "30", "2024-01-15", "123-456-7890"},
			wantHeaders:   []string{"column_1", "column_2", "column_3", "column_4"},
			wantIsData:    true,
			wantFirstData: []string{"John", "30", "2024-01-15", "123-456-7890"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeHeaders(tt.input)

			if got == nil {
				t.Fatal("AnalyzeHeaders returned nil")
			}

			if !reflect.DeepEqual(got.Headers, tt.wantHeaders) {
				t.Errorf("Headers = %v, want %v", got.Headers, tt.wantHeaders)
			}

			if got.FirstRowIsData != tt.wantIsData {
				t.Errorf("FirstRowIsData = %v, want %v", got.FirstRowIsData, tt.wantIsData)
			}

			if !reflect.DeepEqual(got.FirstDataRow, tt.wantFirstData) {
				t.Errorf("FirstDataRow = %v, want %v", got.FirstDataRow, tt.wantFirstData)
			}
		})
	}
}

func TestIsLikelyHeader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Empty string", "", false},
		{"Simple header", "Name", true},
		{"Header with space", "User Name", true},
		{"Number", "123", false},
		{"Date", "2024-01-01", false},
		{"Special characters", "User#Name!", true},
		{"Only special chars", "###", false},
		{"Mixed content", "User123", true},
		{"Rus", "колонка1", true},
		{"Email", "test@email.com", true},
		{"Phone", "+1-234-567-8900", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isLikelyHeader(tt.input); got != tt.want {
				t.Errorf("isLikelyHeader(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateHeaders(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		expected []string
	}{
		{
			name:     "No duplicates",
			headers:  []string{"name", "age", "email"},
			expected: []string{"name", "age", "email"},
		},
		{
			name:     "With duplicates",
			headers:  []string{"name", "name", "name"},
			expected: []string{"name", "name_1", "name_2"},
		},
		{
			name:     "Mixed duplicates",
			headers:  []string{"name", "age", "name", "email", "age"},
			expected: []string{"name", "age", "name_1", "email", "age_1"},
		},
		{
			name:     "Empty headers",
			headers:  []string{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateHeaders(tt.headers)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("ValidateHeaders() = %v, want %v", result, tt.expected)
			}
		})
	}
}
