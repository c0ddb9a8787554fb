package handler

import jsoniter "github.com/json-iterator/go"

// json substitui encoding/json em todos os handlers com a mesma API.
var json = jsoniter.ConfigCompatibleWithStandardLibrary
