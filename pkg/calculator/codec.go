package calculator

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName content-subtype, под которым зарегистрирован JSON кодек
const CodecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// jsonCodec кодирует сообщения сервиса в JSON вместо protobuf
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}
