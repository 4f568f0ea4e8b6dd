package ocr

// TokenTable holds word-level engine output as parallel columns, one entry
// per candidate token in the order the engine reported them. Tokens with
// empty text are included here; filtering happens downstream.
type TokenTable struct {
	Text   []string
	Left   []int
	Top    []int
	Width  []int
	Height []int
	Conf   []float64
}

// Len returns the number of candidate tokens in the table.
func (t *TokenTable) Len() int {
	return len(t.Text)
}

// Add appends one candidate token to every column.
func (t *TokenTable) Add(text string, left, top, width, height int, conf float64) {
	t.Text = append(t.Text, text)
	t.Left = append(t.Left, left)
	t.Top = append(t.Top, top)
	t.Width = append(t.Width, width)
	t.Height = append(t.Height, height)
	t.Conf = append(t.Conf, conf)
}

// Engine is the contract every OCR backend must satisfy.
type Engine interface {
	// Name identifies the backend in logs.
	Name() string

	// Available verifies the backend can run. It is called once at startup;
	// a failure here terminates the process before any image is processed.
	Available() error

	// DetectOrientation reports the page rotation in degrees for the image
	// at path, one of 0, 90, 180 or 270 for upright-able pages.
	DetectOrientation(path string) (int, error)

	// ExtractTokens runs word-level recognition on the image at path.
	ExtractTokens(path string) (*TokenTable, error)
}
