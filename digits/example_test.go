package digits_test

import (
	"fmt"

	"github.com/katalvlaran/bruteopt/digits"
)

func ExampleAnalyze() {
	a, err := digits.Analyze("s225187913")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(a.Digits)
	fmt.Println(a.Max, a.MaxIndex, a.SecondMax)
	fmt.Println(a.Distinct)
	fmt.Println(a.Smaller)
	// Output:
	// [2 2 5 1 8 7 9 1 3]
	// 9 6 8
	// [2 5 1 8 7 9 3]
	// [2 2 5 0 7 6 8 0 4]
}

func ExampleReverseFrom() {
	s, _ := digits.ReverseFrom("s123456", 3)
	fmt.Println(s)
	// Output: s126543
}
