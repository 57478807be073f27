package utils

import (
	"edtechbackend/config"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
)

// VerifyTransaction asks the payment gateway for the final status of a
// transaction reference. Returns the gateway's status string:
// "success", "failed" or "pending".
func VerifyTransaction(reference string) (string, error) {
	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.PaymentApiKey).
		Get(config.AppConfig.PaymentApiURL + "/transaction/verify/" + reference)
	if err != nil {
		log.Printf("Payment gateway request failed: %v", err)
		return "", err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Payment gateway returned status %d: %s", resp.StatusCode(), resp.String())
		return "", fmt.Errorf("gateway returned status %d", resp.StatusCode())
	}

	var result struct {
		Status bool `json:"status"`
		Data   struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		log.Printf("Failed to parse gateway response: %v", err)
		return "", err
	}

	return result.Data.Status, nil
}
