package storage

// Object is a file payload handed to the asset store.
type Object struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Asset is the durable reference returned by a successful upload. Exactly one
// row (dish, event or weekly menu) owns an asset; replacing or deleting the
// owner must delete the asset to avoid orphaning storage.
type Asset struct {
	URL         string
	Name        string
	ContentType string
}
