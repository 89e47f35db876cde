// Command padezh declines Russian words, names, phrases and numerals from
// the command line.
//
//	padezh inflect --case gen директор
//	padezh phrase --case dat --kind profession Главный бухгалтер
//	padezh name --case ins Иванова Анна Сергеевна
//	padezh numeral --case dat 21 рубль
//	padezh spell 2.25
//	padezh ordinal --gender f 21
//	padezh paradigm Генеральный директор
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
