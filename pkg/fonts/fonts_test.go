package fonts

import "testing"

func TestNewFace(t *testing.T) {
	for _, w := range []Weight{Regular, Medium, Bold, Italic} {
		t.Run(w.String(), func(t *testing.T) {
			face, err := NewFace(w, 12, 72)
			if err != nil {
				t.Fatalf("NewFace(%v): %v", w, err)
			}
			defer face.Close()

			if face.Metrics().Height <= 0 {
				t.Errorf("face height = %v, want > 0", face.Metrics().Height)
			}
		})
	}
}

func TestNewFaceScalesWithDPI(t *testing.T) {
	small, err := NewFace(Regular, 10, 72)
	if err != nil {
		t.Fatal(err)
	}
	defer small.Close()
	large, err := NewFace(Regular, 10, 144)
	if err != nil {
		t.Fatal(err)
	}
	defer large.Close()

	if large.Metrics().Height <= small.Metrics().Height {
		t.Errorf("144dpi height %v should exceed 72dpi height %v", large.Metrics().Height, small.Metrics().Height)
	}
}

func TestNewFaceUnknownWeight(t *testing.T) {
	if _, err := NewFace(Weight(42), 10, 72); err == nil {
		t.Error("NewFace with unknown weight should fail")
	}
}
