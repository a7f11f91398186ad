package cmd

import (
	"errors"

	"github.com/sensepost/wiiload/endpoint"
	"github.com/sensepost/wiiload/lib"
	"github.com/sensepost/wiiload/payload"
	"github.com/sensepost/wiiload/protocol"
	"github.com/sensepost/wiiload/transfer"

	"github.com/spf13/cobra"
)

var sendCmdNoArchive bool

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send <path> [launch args...]",
	Short: "Send an executable or archive to the Wii",
	Long: `Send an executable or archive to the Wii.

The payload is zlib compressed and streamed to the wiiload listener
in 128 KiB chunks. A directory is zipped next to itself first, unless
--no-archive is set. Everything after the path is handed to the
application as launch arguments.

Example:
	wiiload send /path/to/boot.dol
	wiiload send /path/to/boot.elf
	wiiload send /path/to/appname.zip
	wiiload send /path/to/appname/
	wiiload -e tcp:192.168.1.106 send boot.dol -- --turbo`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {

		log := options.Logger

		rawEndpoint, err := options.ResolveEndpoint()
		if err != nil {
			log.Fatal().Err(err).Msg("no target to send to")
		}

		target, err := endpoint.Parse(rawEndpoint)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid target endpoint")
		}

		path := args[0]
		launchArgs := args[1:]

		pl, err := payload.Resolve(path)
		if errors.Is(err, payload.ErrIsDirectory) && !sendCmdNoArchive {
			log.Info().Str("dir", path).Msg("directory given, zipping it first")
			archived, aerr := payload.Archive(path)
			if aerr != nil {
				log.Fatal().Err(aerr).Msg("failed to zip directory")
			}
			log.Info().Str("archive", archived).Msg("archive written")
			pl, err = payload.Resolve(archived)
		}
		if err != nil {
			log.Fatal().Err(err).Msg("cannot send payload")
		}

		compressed, err := payload.Compress(pl.Path)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to compress payload")
		}
		log.Info().Str("file", pl.Name()).Str("kind", pl.Kind.String()).
			Int("size", compressed.OriginalSize).Int("compressed", len(compressed.Data)).
			Msg("payload ready")

		argBlock := protocol.ArgBlock(pl.Name(), launchArgs)
		header, err := protocol.Header{
			ArgsLen:       len(argBlock),
			CompressedLen: len(compressed.Data),
			OriginalLen:   compressed.OriginalSize,
		}.Encode()
		if err != nil {
			log.Fatal().Err(err).Msg("payload exceeds protocol limits")
		}

		chunks := lib.ByteSplit(compressed.Data, protocol.ChunkSize)

		addr, err := target.Addr()
		if err != nil {
			log.Fatal().Err(err).Msg("cannot resolve target endpoint")
		}

		log.Info().Str("addr", addr).Msg("connecting to the Wii")
		session, err := transfer.Dial(addr, *log)
		if err != nil {
			log.Fatal().Err(err).
				Msg("can't connect. make sure the Wii is on and the Homebrew Channel is open")
		}
		defer session.Close()

		log.Info().Int("chunks", len(chunks)).Msg("sending")
		if err := session.Send(header, chunks, argBlock); err != nil {
			session.Close()
			log.Fatal().Err(err).Msg("transfer failed")
		}

		log.Info().Msg("done. the Homebrew Channel should be launching it now")
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)

	sendCmd.Flags().BoolVar(&sendCmdNoArchive, "no-archive", false, "fail on a directory payload instead of zipping it")
}
