package ui

// Prompt is the shell's literal prompt string. It is never styled —
// the contract is exactly these two characters, not an approximation.
const Prompt = "$ "
