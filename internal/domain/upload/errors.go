package upload

import "errors"

var ErrUndecodableImage = errors.New("image could not be decoded")
