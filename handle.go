package globallog

// Handle binds a GlobalLog to the key of one call site, typically the name
// of the package or component doing the logging.
type Handle struct {
	log *GlobalLog
	key string
}

func (h *Handle) CurrentKey() string {
	return h.key
}

// Message records msg under the handle's key.
func (h *Handle) Message(msg string) error {
	return h.log.Record(h.key, msg)
}

// Log prints msg to the console.
func (h *Handle) Log(msg string) {
	h.log.Print(msg)
}

// Get returns the rendered history of any key.
func (h *Handle) Get(key string) (string, error) {
	return h.log.Get(key)
}

// History returns the rendered history of the handle's own key.
func (h *Handle) History() (string, error) {
	return h.log.Get(h.key)
}
