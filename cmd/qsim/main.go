package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/theapemachine/qsim"
)

var (
	seed       int64
	oracleCase int

	rootCmd = &cobra.Command{
		Use:   "qsim",
		Short: "Run small quantum circuit demos on the statevector simulator",
		Long: `qsim simulates small quantum circuits by tracking the full joint
statevector and offers a few classic protocols as subcommands.`,
	}
	bellCmd = &cobra.Command{
		Use:   "bell",
		Short: "Entangle two qubits into a Bell pair and print the state",
		RunE:  runBell,
	}
	deutschCmd = &cobra.Command{
		Use:   "deutsch",
		Short: "Run Deutsch's algorithm against one of the four oracle cases",
		Long: `Determines with a single oracle query whether the oracle's one-bit
function is constant (cases 1 and 4) or balanced (cases 2 and 3).`,
		RunE: runDeutsch,
	}
	teleportCmd = &cobra.Command{
		Use:   "teleport",
		Short: "Teleport an unknown qubit from Alice to Bob",
		RunE:  runTeleport,
	}
)

func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0,
		"seed for the measurement randomness source, 0 uses the clock")
	deutschCmd.Flags().IntVar(&oracleCase, "case", 1, "oracle case (1-4)")
	rootCmd.AddCommand(bellCmd, deutschCmd, teleportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func simConfig() *qsim.Config {
	if seed == 0 {
		return qsim.NewConfig()
	}
	return qsim.NewSeededConfig(seed)
}

func runBell(cmd *cobra.Command, args []string) error {
	state, err := qsim.FromQubits(simConfig(), qsim.Zero(), qsim.Zero())
	if err != nil {
		return err
	}
	if err := state.H(0); err != nil {
		return err
	}
	if err := state.CNOT(0, 1); err != nil {
		return err
	}

	fmt.Println(renderTitle("Bell pair"))
	fmt.Println(renderState(state))
	return nil
}

// applyOracle applies the requested one-bit oracle: 1 f(x)=0, 2 f(x)=x,
// 3 f(x)=NOT x, 4 f(x)=1.
func applyOracle(state *qsim.QuantumState, oracleCase int) error {
	if oracleCase == 2 || oracleCase == 3 {
		if err := state.CNOT(0, 1); err != nil {
			return err
		}
	}
	if oracleCase == 3 || oracleCase == 4 {
		if err := state.X(1); err != nil {
			return err
		}
	}
	return nil
}

func runDeutsch(cmd *cobra.Command, args []string) error {
	if oracleCase < 1 || oracleCase > 4 {
		return fmt.Errorf("oracle case must be 1, 2, 3, or 4, got %d", oracleCase)
	}

	// Query qubit |0⟩ in the low slot, ancilla |1⟩ in the high slot.
	state, err := qsim.NewQuantumState([]complex128{0, 0, 1, 0}, simConfig())
	if err != nil {
		return err
	}

	for _, index := range []int{0, 1} {
		if err := state.H(index); err != nil {
			return err
		}
	}
	if err := applyOracle(state, oracleCase); err != nil {
		return err
	}
	if err := state.H(0); err != nil {
		return err
	}

	outcome, err := state.Measure(0)
	if err != nil {
		return err
	}

	fmt.Println(renderTitle(fmt.Sprintf("Deutsch's algorithm, oracle case %d", oracleCase)))
	verdict := "balanced"
	if outcome == 0 {
		verdict = "constant"
	}
	fmt.Printf("measured %s on the query qubit: the oracle is %s\n",
		renderOutcome(outcome), renderVerdict(verdict))
	return nil
}

func runTeleport(cmd *cobra.Command, args []string) error {
	// Bob occupies the high bit, Alice the middle bit.
	state, err := qsim.FromQubits(simConfig(), qsim.Zero(), qsim.Zero())
	if err != nil {
		return err
	}
	if err := state.H(0); err != nil {
		return err
	}
	if err := state.CNOT(0, 1); err != nil {
		return err
	}

	unknown := qsim.NewQubit(0.5, complex(math.Sqrt(3)/2, 0))
	if err := state.AddQubit(unknown); err != nil {
		return err
	}

	fmt.Println(renderTitle("Teleportation"))
	fmt.Println(renderLabeled("unknown qubit", unknown.Amplitudes()))

	if err := state.CNOT(0, 1); err != nil {
		return err
	}
	if err := state.H(0); err != nil {
		return err
	}

	unknownOutcome, err := state.Measure(0)
	if err != nil {
		return err
	}
	aliceOutcome, err := state.Measure(1)
	if err != nil {
		return err
	}
	fmt.Printf("measurements: Q=%s A=%s\n",
		renderOutcome(unknownOutcome), renderOutcome(aliceOutcome))

	if aliceOutcome == 1 {
		if err := state.X(2); err != nil {
			return err
		}
	}
	if unknownOutcome == 1 {
		if err := state.Z(2); err != nil {
			return err
		}
	}

	amps := state.Amplitudes()
	var bob0, bob1 complex128
	for i, amp := range amps {
		if i < 4 {
			bob0 += amp
		} else {
			bob1 += amp
		}
	}

	fmt.Println(renderState(state))
	fmt.Println(renderLabeled("Bob's qubit after protocol", []complex128{bob0, bob1}))
	return nil
}
