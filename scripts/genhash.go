// Prints a password hash for seeding users by hand:
//
//	go run scripts/genhash.go <password>
//	echo -n secret | go run scripts/genhash.go
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/VihaFernando/TickTocker/internal/service"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	password, err := readPassword()
	if err != nil {
		fmt.Fprintln(os.Stderr, "genhash:", err)
		os.Exit(1)
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), service.BcryptCost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "genhash:", err)
		os.Exit(1)
	}
	fmt.Println(string(h))
}

func readPassword() (string, error) {
	if len(os.Args) > 1 {
		return os.Args[1], nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		if err != nil {
			return "", fmt.Errorf("no password given: %w", err)
		}
		return "", fmt.Errorf("empty password")
	}
	return line, nil
}
