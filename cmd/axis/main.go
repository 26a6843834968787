// Command axis computes and draws chart axes from the command line.
//
//	axis ticks --data 3,7.5,-2 --length 400
//	axis render --data 1,1000 --log --out axis.png
//	axis plot --x 1,2,3 --y 2,4,3 --yerr 0.5,0.5,1 --out plot.png
//	axis plot --native --x 1,2,3 --y 2,4,3 --out native.png
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
