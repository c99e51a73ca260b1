package service

import (
	"fmt"
	"math/rand"
	"time"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

// genID makes a short random revision name for cuts stored without
// one.
func genID() string {
	return fmt.Sprintf("%x", rand.Int())
}
