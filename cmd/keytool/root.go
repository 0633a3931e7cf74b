// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sforsanjnarao/prevAuth-sub000/internal/config"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/crypto"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/utils"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "keytool",
		Short: "Generate and check prevauth key material",
		Long: `keytool generates the deployment secret key and user salts, and
benchmarks master password key derivation.

Examples:
  # Generate a value for CRYPTO_SERVER_SECRET_KEY
  keytool server-key

  # Time one derivation with the deployment defaults
  keytool bench`,
		SilenceUsage: true,
	}

	root.AddCommand(newServerKeyCmd(), newSaltCmd(), newBenchCmd())
	return root
}

func newServerKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server-key",
		Short: "Print a new base64-encoded 32-byte server secret key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := crypto.GenerateServerKey()
			if err != nil {
				return fmt.Errorf("error generating server key: %w", err)
			}
			cmd.Println(key)
			return nil
		},
	}
}

func newSaltCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "salt",
		Short: "Print a new base64-encoded 16-byte salt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			salt, err := crypto.GenerateSalt()
			if err != nil {
				return fmt.Errorf("error generating salt: %w", err)
			}
			cmd.Println(salt)
			return nil
		},
	}
}

func newBenchCmd() *cobra.Command {
	var (
		iterations int
		digest     string
		rounds     int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time master password key derivation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kdf, err := crypto.NewKeyDeriver(config.Crypto{
				KDFIterations:            iterations,
				KDFDigest:                digest,
				KeyLength:                config.DefaultKeyLength,
				MaxConcurrentDerivations: 1,
			})
			if err != nil {
				return err
			}
			if rounds < 1 {
				return fmt.Errorf("rounds must be at least 1, got %d", rounds)
			}

			password, err := utils.GeneratePassword(24)
			if err != nil {
				return err
			}
			salt, err := crypto.GenerateSalt()
			if err != nil {
				return err
			}

			var total time.Duration
			for i := 0; i < rounds; i++ {
				start := time.Now()
				key, err := kdf.Derive(context.Background(), password, salt)
				if err != nil {
					return err
				}
				total += time.Since(start)
				key.Destroy()
			}

			cmd.Printf("pbkdf2-%s, %d iterations: %s per derivation (%d rounds)\n",
				digest, iterations, (total / time.Duration(rounds)).Round(time.Millisecond), rounds)

			if iterations < config.MinKDFIterations {
				warn := color.New(color.FgYellow).SprintfFunc()
				cmd.PrintErrln(warn("warning: the server refuses fewer than %d iterations", config.MinKDFIterations))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "i", config.DefaultKDFIterations, "PBKDF2 iteration count")
	cmd.Flags().StringVarP(&digest, "digest", "d", config.DefaultKDFDigest, "PBKDF2 digest: sha256, sha384 or sha512")
	cmd.Flags().IntVarP(&rounds, "rounds", "r", 3, "number of derivations to average")

	return cmd
}
