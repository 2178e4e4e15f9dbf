package explorer

import "encoding/json"

// Transaction is one entry of an Etherscan-compatible txlist answer.
type Transaction struct {
	BlockNumber  string `json:"blockNumber"`
	TimeStamp    string `json:"timeStamp"`
	Hash         string `json:"hash"`
	From         string `json:"from"`
	To           string `json:"to"`
	Value        string `json:"value"`
	Input        string `json:"input"`
	IsError      string `json:"isError"`
	MethodID     string `json:"methodId"`
	FunctionName string `json:"functionName"`
}

type apiResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}
