// Command pkmbridge runs the introspection/automation harness: it wires an
// emulator, the memory-map catalogue, and the MQTT bus into a Runtime and
// drives it until the emulator stops or the process receives SIGINT.
package main

func main() {
	Execute()
}
