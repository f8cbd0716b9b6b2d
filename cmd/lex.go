package main

import (
	"fmt"
	"strings"
	"time"

	"jslc/internal"
)

var source string = strings.Repeat(`
var a = 1; // counter
while (a <= 100000000) {
    a = a + 1.5 * (a - 2) / 'x' || !ok;
}
/* done */
`, 20000)

func main() {
	start := time.Now()
	toks := internal.Scan(source, nil)
	elapsed := time.Since(start)
	fmt.Println("Tokens:", len(toks))
	fmt.Println("Time elapsed is:", elapsed)
	fmt.Printf("Throughput: %.1f MB/s\n", float64(len(source))/elapsed.Seconds()/1e6)
}
