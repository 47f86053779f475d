package handler

import (
	jsoniter "github.com/json-iterator/go"
)

// Codec JSON compatível com a biblioteca padrão, usado por todos os handlers
var json = jsoniter.ConfigCompatibleWithStandardLibrary
