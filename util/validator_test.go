package util

import "testing"

func TestIsUrlValid(t *testing.T) {
	passUrls := []string{
		"https://google.com",
		"http://localhost:3000/path",
		"https://example.com/a?b=c",
	}
	failUrls := []string{
		"google.com",
		"ftp://example.com",
		"https://",
		"",
	}

	for _, url := range passUrls {
		if !IsUrlValid(url) {
			t.Errorf("Url %s should be valid", url)
		}
	}

	for _, url := range failUrls {
		if IsUrlValid(url) {
			t.Errorf("Url %s should be invalid", url)
		}
	}
}

func TestIsCodeValid(t *testing.T) {
	passCodes := []string{"abc", "my-link_1", "AbC123"}
	failCodes := []string{"ab", "", "has space", "acc/ents"}

	for _, code := range passCodes {
		if !IsCodeValid(code) {
			t.Errorf("Code %s should be valid", code)
		}
	}

	for _, code := range failCodes {
		if IsCodeValid(code) {
			t.Errorf("Code %s should be invalid", code)
		}
	}
}
