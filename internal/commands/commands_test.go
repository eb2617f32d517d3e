// ABOUTME: Specs for list, get, show, export, roles, and config commands
// ABOUTME: Verifies output, fallback handling, and error reporting
package commands

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/claudeup/syscolor"
	"github.com/claudeup/syscolor/internal/backup"
	"github.com/claudeup/syscolor/internal/config"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("syscolor CLI", func() {
	var (
		home  string
		theme fakeTheme
	)

	BeforeEach(func() {
		home = GinkgoT().TempDir()
		theme = standardTheme()
	})

	run := func(args ...string) CLIResult {
		return runCLI(home, theme, "", args...)
	}

	Describe("list", func() {
		It("shows available roles with their colors", func() {
			result := run("list")

			Expect(result.Err).NotTo(HaveOccurred())
			Expect(result.Stdout).To(ContainSubstring("System Colors (7)"))
			Expect(result.Stdout).To(ContainSubstring("window"))
			Expect(result.Stdout).To(ContainSubstring("COLOR_HIGHLIGHT"))
			Expect(result.Stdout).To(ContainSubstring("#0078D7"))
			Expect(result.Stdout).NotTo(ContainSubstring("menu-bar"))
		})

		It("reports how many roles are missing", func() {
			result := run("list")

			missing := len(syscolor.All()) - len(theme)
			Expect(result.Stdout).To(ContainSubstring("%d roles not available", missing))
		})

		It("includes missing roles with --all", func() {
			result := run("list", "--all")

			Expect(result.Err).NotTo(HaveOccurred())
			Expect(result.Stdout).To(ContainSubstring("System Colors (%d)", len(syscolor.All())))
			Expect(result.Stdout).To(ContainSubstring("menu-bar"))
			Expect(result.Stdout).To(ContainSubstring("n/a"))
		})

		It("marks colors filled from fallbacks", func() {
			Expect(run("config", "set-fallback", "menu-bar", "#EEEEEE").Err).NotTo(HaveOccurred())

			result := run("list")

			Expect(result.Err).NotTo(HaveOccurred())
			Expect(result.Stdout).To(ContainSubstring("menu-bar"))
			Expect(result.Stdout).To(ContainSubstring("#EEEEEE"))
			Expect(result.Stdout).To(ContainSubstring("1 from configured fallbacks"))
		})

		It("explains an empty palette", func() {
			theme = fakeTheme{}

			result := run("list")

			Expect(result.Err).NotTo(HaveOccurred())
			Expect(result.Stdout).To(ContainSubstring("No system colors available"))
		})
	})

	Describe("get", func() {
		It("prints a single color as hex", func() {
			result := run("get", "window")

			Expect(result.Err).NotTo(HaveOccurred())
			Expect(result.Stdout).To(Equal("#FFFFFF\n"))
		})

		It("accepts Win32 constant names and aliases", func() {
			Expect(run("get", "COLOR_HIGHLIGHT").Stdout).To(Equal("#0078D7\n"))
			Expect(run("get", "3dface").Stdout).To(Equal("#F0F0F0\n"))
		})

		It("prefixes role names when several are requested", func() {
			result := run("get", "window", "active-caption")

			Expect(result.Err).NotTo(HaveOccurred())
			Expect(result.Stdout).To(Equal("window #FFFFFF\nactive-caption #99B4D1\n"))
		})

		It("prints the packed COLORREF with --raw", func() {
			result := run("get", "highlight", "--raw")

			Expect(result.Err).NotTo(HaveOccurred())
			Expect(result.Stdout).To(Equal("0x00D77800\n"))
		})

		It("fails with NotAvailable for a missing role", func() {
			result := run("get", "three-d-dark-shadow")

			Expect(result.Err).To(HaveOccurred())
			Expect(errors.Is(result.Err, syscolor.ErrNotAvailable)).To(BeTrue())
			Expect(result.Err.Error()).To(ContainSubstring("COLOR_3DDKSHADOW"))
			Expect(result.Stdout).To(BeEmpty())
		})

		It("uses --fallback for a missing role", func() {
			result := run("get", "menu-bar", "--fallback", "#F0F0F0")

			Expect(result.Err).NotTo(HaveOccurred())
			Expect(result.Stdout).To(Equal("#F0F0F0\n"))
		})

		It("ignores --fallback for a defined role", func() {
			result := run("get", "window", "--fallback", "#123456")

			Expect(result.Stdout).To(Equal("#FFFFFF\n"))
		})

		It("uses the configured fallback when no flag is given", func() {
			Expect(run("config", "set-fallback", "COLOR_MENUBAR", "ddd").Err).NotTo(HaveOccurred())

			result := run("get", "menu-bar")

			Expect(result.Err).NotTo(HaveOccurred())
			Expect(result.Stdout).To(Equal("#DDDDDD\n"))
		})

		It("rejects unknown roles", func() {
			result := run("get", "title-bar")

			var unknown *syscolor.UnknownIndexError
			Expect(errors.As(result.Err, &unknown)).To(BeTrue())
		})

		It("rejects a malformed --fallback", func() {
			result := run("get", "window", "--fallback", "blue")

			Expect(result.Err).To(MatchError(ContainSubstring("invalid --fallback")))
		})

		It("logs queries with --verbose", func() {
			result := run("--verbose", "get", "window")

			Expect(result.Err).NotTo(HaveOccurred())
			Expect(result.Stderr).To(ContainSubstring("read system color"))
			Expect(result.Stderr).To(ContainSubstring("role=window"))
		})

		It("stays quiet without --verbose", func() {
			result := run("get", "window")

			Expect(result.Stderr).To(BeEmpty())
		})
	})

	Describe("show", func() {
		It("describes a defined role", func() {
			result := run("show", "highlight")

			Expect(result.Err).NotTo(HaveOccurred())
			Expect(result.Stdout).To(ContainSubstring("Highlight"))
			Expect(result.Stdout).To(ContainSubstring("COLOR_HIGHLIGHT"))
			Expect(result.Stdout).To(ContainSubstring("Items selected in a control"))
			Expect(result.Stdout).To(ContainSubstring("#0078D7"))
			Expect(result.Stdout).To(ContainSubstring("0x00D77800"))
			Expect(result.Stdout).To(ContainSubstring("system"))
		})

		It("lists platform aliases", func() {
			result := run("show", "button-highlight")

			Expect(result.Stdout).To(ContainSubstring("COLOR_3DHILIGHT"))
		})

		It("reports a missing role without failing", func() {
			result := run("show", "hot-light")

			Expect(result.Err).NotTo(HaveOccurred())
			Expect(result.Stdout).To(ContainSubstring("not available on this system"))
		})

		It("shows a configured fallback", func() {
			Expect(run("config", "set-fallback", "hot-light", "#0066CC").Err).NotTo(HaveOccurred())

			result := run("show", "hot-light")

			Expect(result.Stdout).To(ContainSubstring("#0066CC"))
			Expect(result.Stdout).To(ContainSubstring("fallback"))
		})
	})

	Describe("export", func() {
		It("writes JSON by default", func() {
			result := run("export")

			Expect(result.Err).NotTo(HaveOccurred())

			var doc struct {
				Colors []struct {
					Role     string `json:"role"`
					Constant string `json:"constant"`
					Index    int    `json:"index"`
					Color    string `json:"color"`
				} `json:"colors"`
			}
			Expect(json.Unmarshal([]byte(result.Stdout), &doc)).To(Succeed())
			Expect(doc.Colors).To(HaveLen(len(theme)))
			Expect(doc.Colors[0].Role).To(Equal("active-caption"))
			Expect(doc.Colors[0].Index).To(Equal(2))
		})

		It("writes CSS custom properties with a prefix", func() {
			result := run("export", "--format", "css", "--prefix", "win-")

			Expect(result.Err).NotTo(HaveOccurred())
			Expect(result.Stdout).To(HavePrefix(":root {\n"))
			Expect(result.Stdout).To(ContainSubstring("  --win-window: #FFFFFF;\n"))
		})

		It("uses the configured default format", func() {
			Expect(run("config", "set-format", "env").Err).NotTo(HaveOccurred())

			result := run("export")

			Expect(result.Err).NotTo(HaveOccurred())
			Expect(result.Stdout).To(ContainSubstring("SYSCOLOR_HIGHLIGHT=#0078D7\n"))
		})

		It("lets --format override the configured format", func() {
			Expect(run("config", "set-format", "env").Err).NotTo(HaveOccurred())

			result := run("export", "--format", "yaml")

			Expect(result.Stdout).To(ContainSubstring("colors:"))
			Expect(result.Stdout).To(ContainSubstring("role: window"))
		})

		It("writes to a file with --output", func() {
			path := filepath.Join(home, "theme.css")

			result := run("export", "-f", "css", "-o", path)

			Expect(result.Err).NotTo(HaveOccurred())
			Expect(result.Stdout).To(ContainSubstring("Exported %d colors", len(theme)))

			data, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring("--syscolor-button-face: #F0F0F0;"))
		})

		It("rejects unknown formats", func() {
			result := run("export", "--format", "toml")

			Expect(result.Err).To(MatchError(ContainSubstring("unsupported format")))
		})
	})

	Describe("roles", func() {
		It("prints a markdown reference when piped", func() {
			result := run("roles")

			Expect(result.Err).NotTo(HaveOccurred())
			Expect(result.Stdout).To(HavePrefix("# System Color Roles"))
			for _, idx := range syscolor.All() {
				Expect(result.Stdout).To(ContainSubstring("`" + idx.Constant() + "`"))
			}
		})

		It("lists each role on its own row", func() {
			result := run("roles", "--raw")

			rows := strings.Count(result.Stdout, "\n| `")
			Expect(rows).To(Equal(len(syscolor.All())))
		})
	})

	Describe("config", func() {
		It("shows defaults on a fresh home", func() {
			result := run("config", "show")

			Expect(result.Err).NotTo(HaveOccurred())
			Expect(result.Stdout).To(ContainSubstring(config.ConfigPath(home)))
			Expect(result.Stdout).To(ContainSubstring("json"))
			Expect(result.Stdout).To(ContainSubstring("No fallbacks configured"))
		})

		It("persists fallbacks to config.json", func() {
			Expect(run("config", "set-fallback", "menu-bar", "#F0F0F0").Err).NotTo(HaveOccurred())

			cfg, err := config.Load(home)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Fallbacks).To(HaveKeyWithValue(syscolor.MenuBar, syscolor.RGB(0xF0, 0xF0, 0xF0)))

			result := run("config", "show")
			Expect(result.Stdout).To(ContainSubstring("Fallbacks (1)"))
			Expect(result.Stdout).To(ContainSubstring("menu-bar #F0F0F0"))
		})

		It("removes fallbacks", func() {
			Expect(run("config", "set-fallback", "menu-bar", "#F0F0F0").Err).NotTo(HaveOccurred())

			result := run("config", "unset-fallback", "menu-bar")
			Expect(result.Stdout).To(ContainSubstring("Removed fallback for menu-bar"))

			result = run("config", "unset-fallback", "menu-bar")
			Expect(result.Stdout).To(ContainSubstring("No fallback configured"))
		})

		It("rejects invalid fallback colors", func() {
			result := run("config", "set-fallback", "menu-bar", "not-a-color")

			var hexErr *syscolor.HexError
			Expect(errors.As(result.Err, &hexErr)).To(BeTrue())
		})

		It("rejects unknown formats", func() {
			result := run("config", "set-format", "xml")

			Expect(result.Err).To(HaveOccurred())
		})

		Describe("history", func() {
			It("is empty before any change", func() {
				result := run("config", "history")

				Expect(result.Err).NotTo(HaveOccurred())
				Expect(result.Stdout).To(ContainSubstring("No configuration changes recorded"))
			})

			It("lists changes most recent first", func() {
				Expect(run("config", "set-fallback", "menu-bar", "#F0F0F0").Err).NotTo(HaveOccurred())
				Expect(run("config", "set-format", "yaml").Err).NotTo(HaveOccurred())

				result := run("config", "history")

				Expect(result.Err).NotTo(HaveOccurred())
				Expect(result.Stdout).To(ContainSubstring("Configuration History (2)"))
				Expect(result.Stdout).To(ContainSubstring("color=#F0F0F0 role=menu-bar"))
				Expect(result.Stdout).To(ContainSubstring("format=yaml"))
				Expect(strings.Index(result.Stdout, "config set-format")).To(BeNumerically("<", strings.Index(result.Stdout, "config set-fallback")))
			})

			It("honors --limit", func() {
				Expect(run("config", "set-format", "yaml").Err).NotTo(HaveOccurred())
				Expect(run("config", "set-format", "css").Err).NotTo(HaveOccurred())

				result := run("config", "history", "--limit", "1")

				Expect(result.Stdout).To(ContainSubstring("Configuration History (1)"))
				Expect(result.Stdout).To(ContainSubstring("format=css"))
				Expect(result.Stdout).NotTo(ContainSubstring("format=yaml"))
			})
		})

		Describe("reset", func() {
			BeforeEach(func() {
				Expect(run("config", "set-format", "css").Err).NotTo(HaveOccurred())
			})

			It("keeps the config when the prompt is declined", func() {
				result := runCLI(home, theme, "n\n", "config", "reset")

				Expect(result.Stdout).To(ContainSubstring("Configuration unchanged"))
				cfg, err := config.Load(home)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Preferences.Format).To(Equal("css"))
			})

			It("resets when confirmed", func() {
				result := runCLI(home, theme, "y\n", "config", "reset")

				Expect(result.Stdout).To(ContainSubstring("reset to defaults"))
				cfg, err := config.Load(home)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Preferences.Format).To(BeEmpty())
			})

			It("restores the config saved by reset", func() {
				Expect(run("--yes", "config", "reset").Err).NotTo(HaveOccurred())

				result := run("config", "restore")

				Expect(result.Err).NotTo(HaveOccurred())
				Expect(result.Stdout).To(ContainSubstring("Configuration restored"))
				cfg, err := config.Load(home)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Preferences.Format).To(Equal("css"))
			})

			It("fails to restore without a backup", func() {
				result := run("config", "restore")

				Expect(errors.Is(result.Err, backup.ErrNoBackup)).To(BeTrue())
			})

			It("skips the prompt with --yes", func() {
				result := run("--yes", "config", "reset")

				Expect(result.Stdout).NotTo(ContainSubstring("[y/N]"))
				Expect(result.Stdout).To(ContainSubstring("reset to defaults"))
			})
		})
	})
})
