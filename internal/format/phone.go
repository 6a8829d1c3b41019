package format

import "strings"

// Phone aplica a máscara progressiva de celular brasileiro:
// "61998031185" -> "(61) 99803-1185". Entradas parciais ganham a máscara
// parcial ("(61", "(61) 998..."); dígitos além do 11º são descartados.
func Phone(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	numbers := digits.String()

	switch n := len(numbers); {
	case n <= 2:
		return "(" + numbers
	case n <= 7:
		return "(" + numbers[:2] + ") " + numbers[2:]
	default:
		end := 11
		if n < end {
			end = n
		}
		return "(" + numbers[:2] + ") " + numbers[2:7] + "-" + numbers[7:end]
	}
}
