package main

// Generate an obviously fake XCI for trying out the trimmer by hand. Data is
// constantly increasing values (never 0xFF) so it's easy to spot in a hex
// editor.

import (
	"fmt"
	"os"
	"strconv"

	"github.com/randomouscrap98/xcigotools/xci"
)

func main() {
	if len(os.Args) < 4 || len(os.Args) > 5 {
		fmt.Println("Usage: go run main.go <filename> <capacity code> <data sectors> [padded]")
		return
	}

	filename := os.Args[1]
	code, err := strconv.ParseUint(os.Args[2], 0, 8)
	if err != nil {
		fmt.Println("Error: can't parse capacity code: ", err)
		return
	}
	sectors, err := strconv.ParseUint(os.Args[3], 0, 32)
	if err != nil {
		fmt.Println("Error: can't parse data sectors: ", err)
		return
	}
	padded := len(os.Args) == 5 && os.Args[4] == "padded"

	header := xci.XciHeader{
		CapacityCode:       uint8(code),
		PaddingStartSector: uint32(sectors),
	}
	_, capacity, err := xci.ResolveCapacity(header.CapacityCode)
	if err != nil {
		fmt.Println("Error: ", err)
		return
	}

	file, err := os.Create(filename)
	if err != nil {
		fmt.Println("Error opening file:", err)
		return
	}
	defer file.Close()

	data := make([]byte, header.PaddingOffset())
	for i := range data {
		data[i] = uint8(i % 0xFF)
	}
	header.WriteInto(data)

	_, err = file.Write(data)
	if err != nil {
		fmt.Println("Error writing file: ", err)
		return
	}

	if padded {
		_, err = xci.WritePadding(file, capacity-header.PaddingOffset(), xci.DefaultChunkSize)
		if err != nil {
			fmt.Println("Error writing padding: ", err)
			return
		}
	}

	fmt.Println("Wrote file ", filename)
}
