package javagen

import "io"

func Fuzz(data []byte) int {
	var registry, err = NewBundle().
		AddHeaderString("fuzz.soyh", string(data)).
		Compile()

	if err != nil {
		return 0
	}

	// Anything that compiles must also generate.
	if err := NewGenerator(registry).WriteFile(io.Discard, "fuzz.soyh"); err != nil {
		panic(err)
	}
	return 1
}
