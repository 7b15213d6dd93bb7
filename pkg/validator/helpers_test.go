package validator_test

type upload struct {
	contentType string
	size        int64
}

func (u upload) ContentType() string { return u.contentType }
func (u upload) Size() int64         { return u.size }
