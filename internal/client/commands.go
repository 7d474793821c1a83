package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-fhevm/internal/fhevm"
	"github.com/MKhiriev/go-fhevm/internal/service"
	"github.com/MKhiriev/go-fhevm/internal/session"
	"github.com/MKhiriev/go-fhevm/internal/validators"
	"github.com/MKhiriev/go-fhevm/models"
)

var (
	ErrLocalUnsupported = errors.New("command is not available with --local")
	ErrMissingFlag      = errors.New("missing required flag")
)

func (a *App) remoteOnly() error {
	if a.flags.local {
		return ErrLocalUnsupported
	}
	return nil
}

// withSession initializes an in-process client and runs fn on a session
// over it. A failed initialization is passed to fn through the session.
func (a *App) withSession(ctx context.Context, fn func(*session.Session) error) error {
	engine := a.newEngine(a.cfg, a.log)
	defer engine.Close()

	s := session.New(engine, a.log)
	defer s.Close()

	if err := engine.Init(ctx); err != nil {
		a.log.Debug().Err(err).Msg("local client initialization failed")
	}
	return fn(s)
}

func (a *App) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the lifecycle state of the FHEVM client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.flags.local {
				st, err := a.server.Status(cmd.Context())
				if err != nil {
					return err
				}
				return a.print(st)
			}

			return a.withSession(cmd.Context(), func(s *session.Session) error {
				st := models.ClientStatus{
					Status:          s.Status(),
					Initialized:     s.IsInitialized(),
					Network:         string(a.cfg.FHEVM.Network),
					ContractAddress: a.cfg.FHEVM.ContractAddress,
					Timestamp:       time.Now().UTC(),
				}
				if err := s.Err(); err != nil {
					st.Error = err.Error()
				}
				return a.print(st)
			})
		},
	}
}

func (a *App) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show server capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.remoteOnly(); err != nil {
				return err
			}
			info, err := a.server.Info(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(info)
		},
	}
}

func (a *App) keysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Show the public key material of the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.remoteOnly(); err != nil {
				return err
			}
			keys, err := a.server.Keys(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(keys)
		},
	}
}

func (a *App) encryptCommand() *cobra.Command {
	var typ string

	cmd := &cobra.Command{
		Use:   "encrypt VALUE",
		Short: "Encrypt a non-negative integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.flags.local {
				res, err := a.server.Encrypt(cmd.Context(), models.EncryptRequest{Value: json.Number(args[0]), Type: typ})
				if err != nil {
					return err
				}
				return a.print(res)
			}

			value, t, err := parseTypedValue(args[0], typ)
			if err != nil {
				return err
			}
			return a.withSession(cmd.Context(), func(s *session.Session) error {
				ev, err := s.Encryptor().Encrypt(cmd.Context(), value)
				if err != nil {
					return err
				}
				return a.print(models.EncryptResult{Encrypted: ev, Type: t.Plain(), Timestamp: time.Now().UTC()})
			})
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", "", "encryption type, uint8 to uint64 (default uint32)")
	return cmd
}

func parseTypedValue(raw, typ string) (uint64, fhevm.EncryptionType, error) {
	t, err := fhevm.ParseEncryptionType(typ)
	if err != nil {
		return 0, t, err
	}
	value, err := validators.ParseEncryptionValue(raw)
	if err != nil {
		return 0, t, err
	}
	if err = t.Check(value); err != nil {
		return 0, t, err
	}
	return value, t, nil
}

func (a *App) decryptCommand() *cobra.Command {
	var (
		data, signature string
		public          bool
	)

	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a value produced by encrypt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if data == "" || signature == "" {
				return fmt.Errorf("%w: --data and --signature", ErrMissingFlag)
			}
			raw, err := hexutil.Decode(data)
			if err != nil {
				return fmt.Errorf("%w: %w", fhevm.ErrMalformedCiphertext, err)
			}
			ev := fhevm.EncryptedValue{Data: fhevm.Ciphertext(raw), Signature: signature}

			if !a.flags.local {
				res, err := a.server.Decrypt(cmd.Context(), ev, public)
				if err != nil {
					return err
				}
				return a.print(res)
			}

			return a.withSession(cmd.Context(), func(s *session.Session) error {
				res, err := s.Decryptor().Decrypt(cmd.Context(), ev, public)
				if err != nil {
					return err
				}
				return a.print(models.DecryptResult{Decrypted: res.Value, Proof: res.Proof, Public: public, Timestamp: time.Now().UTC()})
			})
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "0x-prefixed ciphertext")
	cmd.Flags().StringVar(&signature, "signature", "", "signature returned with the ciphertext")
	cmd.Flags().BoolVar(&public, "public", false, "use public decryption")
	return cmd
}

func (a *App) batchEncryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch-encrypt VALUE...",
		Short: "Encrypt up to 100 values in one request",
		Args:  cobra.RangeArgs(1, validators.MaxBatchSize),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.remoteOnly(); err != nil {
				return err
			}
			values := make([]uint64, len(args))
			for i, arg := range args {
				v, err := validators.ParseEncryptionValue(arg)
				if err != nil {
					return fmt.Errorf("value %d: %w", i, err)
				}
				values[i] = v
			}

			res, err := a.server.BatchEncrypt(cmd.Context(), values)
			if err != nil {
				return err
			}
			return a.print(res)
		},
	}
}

func (a *App) computeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compute OPERATION OPERAND...",
		Short: "Request a homomorphic operation over encrypted operands",
		Long:  "Supported operations: " + strings.Join(validators.ComputeOperations, ", "),
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.remoteOnly(); err != nil {
				return err
			}
			operands := make([]any, 0, len(args)-1)
			for _, op := range args[1:] {
				operands = append(operands, op)
			}

			res, err := a.server.Compute(cmd.Context(), models.ComputeRequest{Operation: args[0], Operands: operands})
			if err != nil {
				return err
			}
			return a.print(res)
		},
	}
}

func (a *App) verifyCommand() *cobra.Command {
	var signature string

	cmd := &cobra.Command{
		Use:   "verify VALUE",
		Short: "Recover the signer of an encryption",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.remoteOnly(); err != nil {
				return err
			}
			if signature == "" {
				return fmt.Errorf("%w: --signature", ErrMissingFlag)
			}

			res, err := a.server.Verify(cmd.Context(), models.VerifyRequest{Value: json.Number(args[0]), Signature: signature})
			if err != nil {
				return err
			}
			return a.print(res)
		},
	}
	cmd.Flags().StringVar(&signature, "signature", "", "signature returned with the ciphertext")
	return cmd
}

func (a *App) operationsCommand() *cobra.Command {
	var (
		limit       int
		kind, actor string
	)

	cmd := &cobra.Command{
		Use:   "operations",
		Short: "List journaled operations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.remoteOnly(); err != nil {
				return err
			}
			res, err := a.server.Operations(cmd.Context(), models.OperationFilter{
				Kind:  models.OperationKind(kind),
				Actor: actor,
				Limit: limit,
			})
			if err != nil {
				return err
			}
			return a.print(res)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of entries")
	cmd.Flags().StringVar(&kind, "kind", "", "encrypt, decrypt, batch_encrypt or compute")
	cmd.Flags().StringVar(&actor, "actor", "", "only entries of this actor")
	return cmd
}

func (a *App) tokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "token ACTOR",
		Short: "Mint a bearer token for a server with authentication enabled",
		Long:  "Requires APP_TOKEN_SIGN_KEY to match the server's.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := service.NewAuthService(a.cfg.App, a.log).CreateToken(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, token.String())
			return err
		},
	}
}

type versionInfo struct {
	CLI    models.AppBuildInfo `json:"cli"`
	Server string              `json:"server,omitempty"`
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := versionInfo{CLI: a.build}
			if !a.flags.local {
				v, err := a.server.Version(cmd.Context())
				if err != nil {
					return err
				}
				out.Server = v
			}
			return a.print(out)
		},
	}
}
