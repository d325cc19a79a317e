package utils

import (
	"fmt"
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func PrettyJson(in any) string {
	// Entrada já serializada precisa ser decodificada antes de indentar
	if reflect.TypeOf(in) == reflect.TypeOf([]byte{}) {
		var decoded any
		if err := json.Unmarshal(in.([]byte), &decoded); err != nil {
			fmt.Println(err)
			return string(in.([]byte))
		}
		in = decoded
	}

	buffer, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		fmt.Println(err)
	}

	return string(buffer)
}
