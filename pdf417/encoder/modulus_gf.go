package encoder

// ModulusGF is the prime field of integers modulo some modulus, with
// exponentiation based on powers of a generator.
type ModulusGF struct {
	expTable []int
	logTable []int
	modulus  int
}

// PDF417GF is the field used by PDF417 error correction (modulus 929,
// generator 3).
var PDF417GF = NewModulusGF(NumberOfCodewords, 3)

// NewModulusGF creates a new ModulusGF with the given modulus and generator.
func NewModulusGF(modulus, generator int) *ModulusGF {
	gf := &ModulusGF{
		modulus:  modulus,
		expTable: make([]int, modulus),
		logTable: make([]int, modulus),
	}
	x := 1
	for i := 0; i < modulus; i++ {
		gf.expTable[i] = x
		x = (x * generator) % modulus
	}
	for i := 0; i < modulus-1; i++ {
		gf.logTable[gf.expTable[i]] = i
	}
	return gf
}

// Add returns (a + b) mod modulus.
func (gf *ModulusGF) Add(a, b int) int {
	return (a + b) % gf.modulus
}

// Subtract returns (a - b) mod modulus.
func (gf *ModulusGF) Subtract(a, b int) int {
	return (gf.modulus + a - b) % gf.modulus
}

// Exp returns generator^a.
func (gf *ModulusGF) Exp(a int) int {
	return gf.expTable[a%(gf.modulus-1)]
}

// Log returns the discrete logarithm of a. Panics if a is 0.
func (gf *ModulusGF) Log(a int) int {
	if a == 0 {
		panic("encoder: log(0)")
	}
	return gf.logTable[a]
}

// Multiply returns a * b in this field.
func (gf *ModulusGF) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return gf.expTable[(gf.logTable[a]+gf.logTable[b])%(gf.modulus-1)]
}

// EvaluateAt evaluates the polynomial whose coefficients are given most
// significant first at the point a.
func (gf *ModulusGF) EvaluateAt(coefficients []int, a int) int {
	if a == 0 {
		if len(coefficients) == 0 {
			return 0
		}
		return coefficients[len(coefficients)-1] % gf.modulus
	}
	result := 0
	for _, c := range coefficients {
		result = gf.Add(gf.Multiply(a, result), c%gf.modulus)
	}
	return result
}
