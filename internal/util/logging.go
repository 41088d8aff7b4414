package util

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

func LogError(message string, err error) error {
	log.Printf("%s: %v", message, err)
	return fmt.Errorf("%s: %w", message, err)
}

// HandleError : пишет JSON-ошибку с машинно-читаемым kind,
// чтобы клиент мог отличить not_found от expired не разбирая текст
func HandleError(w http.ResponseWriter, kind string, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := struct {
		Error struct {
			Code int    `json:"code"`
			Kind string `json:"kind"`
			Text string `json:"text"`
		} `json:"error"`
	}{}
	errorResponse.Error.Code = statusCode
	errorResponse.Error.Kind = kind
	errorResponse.Error.Text = message

	json.NewEncoder(w).Encode(errorResponse)
}
