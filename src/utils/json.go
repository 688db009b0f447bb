package utils

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Marshal(data interface{}) ([]byte, error) {
	return json.Marshal(data)
}

func MarshalIndent(data interface{}) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

func Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
